package config

const (
	// DefaultBaseDir is the directory holding the manifest and the test-case directories
	DefaultBaseDir = "."
	// DefaultManifestFile lists the test cases run when no arguments are given
	DefaultManifestFile = "integration-tests.txt"
	// DefaultGoalsFile overrides the build goals of a single test case
	DefaultGoalsFile = "goals.txt"
	// DefaultLogFile receives the captured build output of a test case
	DefaultLogFile = "log.txt"
	// DefaultGoals are used when a test case has no goals file
	DefaultGoals = "clean verify"
	// DefaultSuccessMarker must appear in the build output for a test case to pass
	DefaultSuccessMarker = "BUILD SUCCESSFUL"
	// DefaultBuildFile marks a directory as a test case during discovery
	DefaultBuildFile = "pom.xml"
	// SettingsFile is the optional YAML settings file in the base dir
	SettingsFile = "itr.yaml"
	// EnvFile is the optional dotenv file in the base dir
	EnvFile = ".env"
)

// DefaultBuildCommand is the build tool invocation the goals are appended to
var DefaultBuildCommand = []string{"mvn"}

// DefaultPathsToIgnore are the directories skipped during discovery
var DefaultPathsToIgnore = []string{
	"target",
	"node_modules",
	"src",
}
