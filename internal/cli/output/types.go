package output

// ConstantOutput is one resolved constant.
type ConstantOutput struct {
	Name   string `json:"name"`
	Value  int64  `json:"value"`
	Hex    string `json:"hex,omitempty"`
	Origin string `json:"origin"`
}

// SetOutput is one resolved constant set.
type SetOutput struct {
	Name        string           `json:"name"`
	Kind        string           `json:"kind"`
	Description string           `json:"description,omitempty"`
	AsPreproc   bool             `json:"as_preproc"`
	Constants   []ConstantOutput `json:"constants"`
}

// TargetOutput is one output target of a schema file.
type TargetOutput struct {
	Path string   `json:"path"`
	Sets []string `json:"sets"`
}

// ShowOutput is the JSON output of the show command.
type ShowOutput struct {
	File    string         `json:"file"`
	Sets    []SetOutput    `json:"sets"`
	Targets []TargetOutput `json:"targets"`
}

// CheckFileResult is the check result of one schema file.
type CheckFileResult struct {
	File  string `json:"file"`
	OK    bool   `json:"ok"`
	Sets  int    `json:"sets"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

// CheckSummary counts check results.
type CheckSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// CheckOutput is the JSON output of the check command.
type CheckOutput struct {
	Files   []CheckFileResult `json:"files"`
	Summary CheckSummary      `json:"summary"`
}

// GraphNode is one constant of a composite dependency graph.
type GraphNode struct {
	Name      string   `json:"name"`
	DependsOn []string `json:"depends_on"`
	UsedBy    []string `json:"used_by"`
}

// GraphLevel groups constants that only depend on lower levels.
type GraphLevel struct {
	Level     int         `json:"level"`
	Constants []GraphNode `json:"constants"`
}

// GraphSet is the dependency graph of one bit-flag set.
type GraphSet struct {
	Name       string       `json:"name"`
	Levels     []GraphLevel `json:"levels"`
	TotalNodes int          `json:"total_nodes"`
	TotalEdges int          `json:"total_edges"`
}

// GraphOutput is the JSON output of the graph command.
type GraphOutput struct {
	File string     `json:"file"`
	Sets []GraphSet `json:"sets"`
}

// VersionOutput is the JSON output of the version command.
type VersionOutput struct {
	Version   string   `json:"version"`
	GoVersion string   `json:"go_version"`
	Platform  string   `json:"platform"`
	Languages []string `json:"languages"`
}

// LanguageInfo describes one registered emitter.
type LanguageInfo struct {
	Name        string `json:"name"`
	Extension   string `json:"extension"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// GenerateOutput is the JSON output of the generate command.
type GenerateOutput struct {
	RunID      string   `json:"run_id"`
	Check      bool     `json:"check"`
	Files      int      `json:"files"`
	Written    []string `json:"written"`
	Unchanged  []string `json:"unchanged"`
	Stale      []string `json:"stale"`
	DurationMS int64    `json:"duration_ms"`
}

// InitOutput is the JSON output of the init command.
type InitOutput struct {
	Created []string `json:"created"`
	Skipped []string `json:"skipped"`
}
