package compiler

// Compile parses src and returns the generated assembly listing.
func Compile(src string) (string, error) {
	graph, err := Parse(src)
	if err != nil {
		return "", err
	}
	return Generate(graph), nil
}
