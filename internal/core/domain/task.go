package domain

// TaskManifest is the validated subset of a task-instance document.
type TaskManifest struct {
	InstanceID string
	Repo       string
	BaseCommit string
	Languages  []string
	Categories []string
}

// Mount binds a host path into a container.
type Mount struct {
	Source   string
	Target   string
	ReadOnly bool
}

// ContainerSpec describes a one-shot container run.
type ContainerSpec struct {
	Image      string
	Name       string
	Command    []string
	WorkingDir string
	Env        map[string]string
	Mounts     []Mount
	Network    string
}
