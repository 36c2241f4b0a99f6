package config

// Prepfile is the shape of a profile file such as prep.yaml.
type Prepfile struct {
	Version  string                `yaml:"version"`
	Projects map[string]ProjectDTO `yaml:"projects"`
}

// ProjectDTO is a target project definition.
type ProjectDTO struct {
	Dir            string            `yaml:"dir"`
	SystemManager  string            `yaml:"system_manager"`
	PackageManager string            `yaml:"package_manager"`
	OnFailure      string            `yaml:"on_failure"`
	Hermetic       bool              `yaml:"hermetic"`
	Env            map[string]string `yaml:"env"`
	Steps          []StepDTO         `yaml:"steps"`
}

// StepDTO is one pipeline step.
type StepDTO struct {
	Name         string            `yaml:"name"`
	Kind         string            `yaml:"kind"`
	OnFailure    string            `yaml:"on_failure"`
	Packages     []string          `yaml:"packages"`
	Requirements []string          `yaml:"requirements"`
	Editable     []string          `yaml:"editable"`
	Update       bool              `yaml:"update"`
	Files        []CopyDTO         `yaml:"files"`
	Env          map[string]string `yaml:"env"`
	Command      string            `yaml:"command"`
}

// CopyDTO is a single file copy.
type CopyDTO struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}
