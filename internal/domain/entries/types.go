package entries

// Kind clasifica una observación. Los tres valores fijos tienen semántica
// propia (campos condicionales); cualquier otro string no vacío es un
// label custom del usuario y se guarda tal cual.
type Kind string

const (
	KindMolt    Kind = "molt"
	KindFeeding Kind = "feeding"
	KindWater   Kind = "water"
)

// Stage solo tiene sentido cuando Kind == molt.
type Stage string

const (
	StagePre  Stage = "Pre-molt"
	StageMolt Stage = "Molt"
	StagePost Stage = "Post-molt"
)

// DefaultStage es el default documentado cuando el entry es molt y no
// especifica etapa.
const DefaultStage = StageMolt

// TempUnit para la temperatura registrada.
type TempUnit string

const (
	TempCelsius    TempUnit = "C"
	TempFahrenheit TempUnit = "F"
)
