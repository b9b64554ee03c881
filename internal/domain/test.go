package domain

// TestCase represents one integration scenario ready to be built
type TestCase struct {
	Name  string // Name as listed in the manifest or given on the command line
	Dir   string // Working directory of the build
	Goals string // Goals appended to the build command
}
