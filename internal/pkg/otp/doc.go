// Package otp provides helpers for generating one-time passwords (OTP).
//
// This is typically used for email login flows: generate a short numeric
// code, deliver it out of band, then check the user-provided code against
// the one issued.
package otp
