package common

// DefaultLoginIP is the sentinel address recorded for login events when no
// real client address is observable.
const DefaultLoginIP = "127.0.0.1"
