// Package tasklist keeps the client-side copy of the backend's task
// collection in sync with confirmed server responses. Failures are logged
// and leave the state untouched; nothing is applied optimistically.
package tasklist
