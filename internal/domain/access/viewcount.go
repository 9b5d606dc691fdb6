package access

// Counter is the anonymous free-view counter. It lives client-side (a browser
// cookie in this deployment) and is purely advisory: clearing it resets the
// quota, which is accepted for a content site. Injected so the policy stays a
// pure function over explicit inputs.
type Counter interface {
	// Count returns the number of free-article views consumed so far.
	Count() int
	// Increment records one more view and returns the new count.
	Increment() int
}

// FreeViewLimit is how many free-tier articles an anonymous visitor may read
// in full before being asked to create an account.
const FreeViewLimit = 3
