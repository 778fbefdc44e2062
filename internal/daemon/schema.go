// Package daemon exposes call resolution as a gRPC service, without
// any protoc-generated code: the wire schema is parsed at startup with
// protoparse and every message that crosses the wire is a
// protoreflect dynamic.Message built against that schema, mirroring the
// runtime-reflection approach the teacher's gRPC builtin uses instead
// of static codegen.
package daemon

import (
	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
)

// schemaSource is the service definition the daemon serves. Requests
// and responses both carry a single YAML document: the request is a
// scenario file (see internal/scenario), the response is a list of
// per-call resolution outcomes. Keeping the payload as opaque YAML
// rather than a fully-typed message lets the wire schema stay tiny
// while the scenario/resolver packages own the actual shape.
const schemaSource = `
syntax = "proto3";
package onyx.resolve.v1;

message ResolveRequest {
  string scenario_yaml = 1;
  string request_id = 2;
}

message ResolveResponse {
  string results_yaml = 1;
  string request_id = 2;
}

service Resolver {
  rpc Resolve(ResolveRequest) returns (ResolveResponse);
}
`

const schemaFileName = "resolve.proto"

// loadSchema parses schemaSource in memory and returns the descriptors
// for the request and response messages plus the service descriptor.
func loadSchema() (reqMsg, respMsg *desc.MessageDescriptor, svc *desc.ServiceDescriptor, err error) {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			schemaFileName: schemaSource,
		}),
	}
	fds, err := parser.ParseFiles(schemaFileName)
	if err != nil {
		return nil, nil, nil, err
	}
	fd := fds[0]
	reqMsg = fd.FindMessage("onyx.resolve.v1.ResolveRequest")
	respMsg = fd.FindMessage("onyx.resolve.v1.ResolveResponse")
	svc = fd.FindService("onyx.resolve.v1.Resolver")
	return reqMsg, respMsg, svc, nil
}
