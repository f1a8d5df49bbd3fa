// Package notify delivers domain events to their destinations.
//
// A Notifier is anything that accepts a domain.Event. The package ships
// a line writer for terminals, a RabbitMQ fanout publisher and a Fanout
// that sends one event to several notifiers at once. The Postgres
// journal lives in internal/repository and satisfies the same interface.
package notify
