// Package clock abstracts the system clock behind a tiny interface.
//
// Expiry decisions (OTP windows, session lifetimes) depend on "now", so
// injecting a Clocker lets tests pin time instead of sleeping.
package clock
