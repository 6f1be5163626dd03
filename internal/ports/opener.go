package ports

// URLOpener opens a link's destination outside the application
type URLOpener interface {
	// Open hands url to the system handler (usually the default browser).
	// It returns once the handler has been started, without waiting for it.
	Open(url string) error
}

// Clipboard receives text copied by the user
type Clipboard interface {
	WriteAll(text string) error
}
