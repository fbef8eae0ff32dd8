// Package vfsdoc loads serialized namespace documents into vfs trees.
//
// A document is a single root element with arbitrarily nested directory and
// file declarations. Three encodings of the same shape are supported:
//   - XML (the original format): <vfs>, <dir name>, <file name encoding>
//   - JSON, parsed with bytedance/sonic
//   - YAML, parsed with goccy/go-yaml
//
// Any of them may be gzip-compressed (".gz" suffix). The format is picked
// from the file extension, XML being the default.
//
// Loading is all-or-nothing: any failure discards the partial tree. File
// payloads are stored tagged with their declared encoding and are not
// decoded at load time; decoding happens on read.
//
// Unknown element kinds are skipped by default. Options.Strict turns them
// into structure errors instead.
package vfsdoc
