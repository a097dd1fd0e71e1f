// Package rpc sits between the domain models and the generated portal
// protobuf messages. It converts in both directions and maps sentinel errors
// in internal/common to gRPC status codes and back.
package rpc

import pb "github.com/oluccaa/qualidade-sub001/internal/proto"

// ServiceName is the fully qualified gRPC service name.
var ServiceName = pb.Portal_ServiceDesc.ServiceName

// PublicMethods can be called without an access token.
var PublicMethods = map[string]bool{
	pb.Portal_Ping_FullMethodName:  true,
	pb.Portal_Login_FullMethodName: true,
}
