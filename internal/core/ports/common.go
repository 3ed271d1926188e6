package ports

// Page carries offset pagination for list queries. Take is validated at
// the transport boundary (required, 1..100); Skip defaults to 0.
type Page struct {
	Skip int
	Take int
}
