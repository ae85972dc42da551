package ports

// Mode is the identifier for each content pattern.
type Mode string

const (
	ModeText   Mode = "text"
	ModeZero   Mode = "zero"
	ModeRandom Mode = "random"
)
