// Package app holds application-wide identity constants.
package app

// Name is the application name used for the config directory and log prefixes
const Name = "worklog"
