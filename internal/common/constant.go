package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RootFolderName is the display name of the library root breadcrumb.
const RootFolderName = "Library"
