package handlers

// AppHandlers bundles the ready-to-register handlers.
type AppHandlers struct {
	RootHandler    *RootHandler
	UserHandler    *UserHandler
	PostingHandler *PostingHandler
	GigHandler     *GigHandler
}
