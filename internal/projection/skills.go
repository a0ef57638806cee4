package projection

// SkillColor is the badge color class for a skill tag
type SkillColor string

const (
	ColorBlue   SkillColor = "blue"
	ColorPurple SkillColor = "purple"
	ColorYellow SkillColor = "yellow"
	ColorGray   SkillColor = "gray"
)

var skillColors = map[string]SkillColor{
	"React":  ColorBlue,
	"Design": ColorPurple,
	"Python": ColorYellow,
}

// ColorForSkill maps known skill tags to fixed colors. Matching is exact;
// anything else is gray.
func ColorForSkill(skill string) SkillColor {
	if c, ok := skillColors[skill]; ok {
		return c
	}
	return ColorGray
}
