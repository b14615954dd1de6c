// Package proto contains the generated wire types and gRPC service stubs
// for the fedlink dispatch protocol.
package proto

//go:generate protoc --proto_path=../../../api/proto --go_out=../../.. --go_opt=module=github.com/fedlink/fedlink --go-grpc_out=../../.. --go-grpc_opt=module=github.com/fedlink/fedlink fedlink/v1/dispatch.proto
