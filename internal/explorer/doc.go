// Package explorer implements the file explorer data controller: paginated,
// searchable listings of one folder at a time, breadcrumbs, folder-scoped
// multi-selection and the CRUD mutations that all end in a re-fetch.
//
// The backend is the only source of truth. The controller never patches its
// cached listing optimistically; every successful mutation is followed by a
// fresh load of page 1 of the current folder.
package explorer
