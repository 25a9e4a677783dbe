// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package webui is the client for the Open WebUI HTTP API.
//
// Client wraps the transport: a bearer token is attached to every request
// when configured, each call carries its own timeout, and any non-2xx
// response surfaces as *RemoteError. There are no automatic retries; a
// failed call propagates immediately and the caller decides recovery
// policy.
//
// The API interface covers the operations consumed by the ingestion
// pipeline and the query tool. Production code uses Client; tests use the
// function-field double in webui/mock.
package webui
