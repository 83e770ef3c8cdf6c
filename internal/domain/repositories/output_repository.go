package repositories

// OutputRepository is the user-facing output stream.
type OutputRepository interface {
	// Log writes a single line.
	Log(message string)

	// Success writes a line reporting something that went well.
	Success(message string)

	// Failure writes a line reporting something that went wrong.
	Failure(message string)

	// Table writes rows as aligned columns; the first row is the header.
	Table(rows [][]string)
}
