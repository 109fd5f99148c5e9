package renderer

type Options struct {
	// Number of cpu tracers to attach. Defaults to the number of cpus.
	NumTracers int
}
