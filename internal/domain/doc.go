// Package domain contains the core entities and value objects of the
// client: tasks, filter criteria, and the credential payloads sent to
// the authentication endpoints. It is independent of any transport or
// presentation concern.
package domain
