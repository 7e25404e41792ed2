package types

// OutputMode selects which output families the generator produces.
type OutputMode string

const (
	// ModeAll generates DTO classes, entity classes and (if enabled) schemas.
	ModeAll OutputMode = "all"
	// ModeDto generates only the input-side DTO classes.
	ModeDto OutputMode = "dto"
	// ModeEntity generates only the entity classes.
	ModeEntity OutputMode = "entity"
)

// Valid reports whether the mode is one of the recognized values.
func (m OutputMode) Valid() bool {
	switch m {
	case ModeAll, ModeDto, ModeEntity:
		return true
	}
	return false
}

// FileNameCase selects the casing style of generated file names.
type FileNameCase string

const (
	CaseCamel FileNameCase = "camel" // createUserDto.ts
	CaseKebab FileNameCase = "kebab" // create-user.dto.ts
	CaseSnake FileNameCase = "snake" // create_user.dto.ts
)

// Valid reports whether the case style is one of the recognized values.
func (c FileNameCase) Valid() bool {
	switch c {
	case CaseCamel, CaseKebab, CaseSnake:
		return true
	}
	return false
}
