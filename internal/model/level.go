package model

// LevelDef is a static level-table entry. MinXP is monotonically
// increasing across the table; level 1 starts at 0.
type LevelDef struct {
	Level        int
	Name         string
	MinXP        int
	Artifact     string
	ArtifactIcon string
	Phase        string
}
