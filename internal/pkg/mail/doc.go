// Package mail delivers outbound email, primarily the one-time login codes.
//
// Usecases depend on the Mail interface and Message payload only; the
// concrete channel (SMTP relay or the SendGrid API) is chosen once at
// startup from configuration.
package mail
