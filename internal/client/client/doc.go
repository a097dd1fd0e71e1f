// Package client is the transport used by the portal front ends.
//
// GRPCClient talks to the portal gRPC API and satisfies the narrow
// interfaces of the client controllers: explorer.FileService,
// inspection.Persister and inspection.Notifier, viewer.URLResolver and
// admin.Service. The caller identity travels in the access token held by
// the session, so the models.User arguments those interfaces carry are not
// sent on the wire.
//
// Status errors are turned back into the sentinels of internal/common, so
// callers match them with errors.Is. Transport failures become
// ErrUnavailable.
package client
