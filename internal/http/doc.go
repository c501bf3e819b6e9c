// Package http provides HTTP handlers and middleware for the roster API.
//
// The router exposes the following endpoints:
//   - GET /employees, POST /employees, PUT /employees/{id}, DELETE /employees/{id}:
//     roster management endpoints exchanging the `employeeDTO` payload defined in
//     employee_handler.go.
//   - GET /schedule: the full weekly grid. DELETE /schedule clears it.
//   - POST /schedule/assignments: books a contiguous block of half-hour slots for
//     one employee on one channel. Conflicting requests are rejected whole with 409.
//   - POST /schedule/slots/clear: empties a single grid cell (idempotent).
//   - POST /schedule/autofill: regenerates the week for the active roster.
//   - GET /stats/report, GET /stats/employees/{id}: aggregated weekly statistics.
//   - GET /config, PUT /config: the scheduling policy.
//
// Mutating routes require the manager role ("gestor") forwarded by the upstream
// proxy in the X-Escala-Role header; reads are open. Mutation responses carry a
// `warnings` array whenever the best-effort write-through to storage failed.
//
// Request/response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
