// Package proto holds the wire contract of the journal gRPC service: request
// and response messages, the service descriptor with its client stub and
// server registration, and the JSON codec the service is spoken over.
//
// Messages are plain Go structs. Every call made through JournalServiceClient
// selects the "json" content subtype, and the server resolves the codec from
// the same subtype, so no generated protobuf code is involved.
package proto
