package ports

// Notifier surfaces non-blocking user-visible notices, the toast analogue.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Navigator forces navigation within the hosting UI. ToLogin is invoked by
// the authenticated transport's interceptor before a 401 propagates to the
// caller.
type Navigator interface {
	ToLogin()
}
