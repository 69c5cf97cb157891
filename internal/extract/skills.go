package extract

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed skills.yaml
var skillsYAML []byte

// skillsVocabulary is the fixed skills list compiled into the binary. Loaded
// once at init; the library is never mutated afterwards.
var skillsVocabulary = mustLoadSkills()

func mustLoadSkills() []string {
	var doc struct {
		Skills []string `yaml:"skills"`
	}
	if err := yaml.Unmarshal(skillsYAML, &doc); err != nil {
		panic(fmt.Sprintf("extract: bad embedded skills vocabulary: %v", err))
	}
	return doc.Skills
}
