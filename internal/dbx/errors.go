package dbx

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oluccaa/qualidade-sub001/internal/common"
)

// PostgreSQL error codes the repositories care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
)

// MapError wraps err with op and, where possible, a sentinel from
// internal/common:
//
//	sql.ErrNoRows           -> common.ErrorNotFound
//	unique violation        -> common.ErrorAlreadyExists
//	foreign key violation   -> common.ErrorNotFound (referenced row missing)
//	check / bad uuid syntax -> common.ErrorValidation
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, common.ErrorNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", op, common.ErrorAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: referenced row: %w", op, common.ErrorNotFound)
		case codeCheckViolation, codeInvalidText:
			return fmt.Errorf("%s: %w: %s", op, common.ErrorValidation, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ExpectOne checks that a statement touched exactly one row.
func ExpectOne(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, common.ErrorNotFound)
	}
	if n != 1 {
		return fmt.Errorf("%s: unexpected rows affected: %d", op, n)
	}
	return nil
}
