package tailmark

// buildIdentity is the identity string of this build. Release pipelines
// override it at link time:
//
//	go build -ldflags "-X github.com/tailmark/tailmark.buildIdentity=2.1.0-prod"
var buildIdentity = "0.0.0-dev"

// RunningBuildIdentity returns the identity string of the running build,
// the default identity a Service stamps into footers and compares against.
func RunningBuildIdentity() string {
	return buildIdentity
}
