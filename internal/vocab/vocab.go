// Package vocab contiene los vocabularios cerrados del dominio (especie,
// sexo de mascota, estado de llanto, intensidad) en sus dos léxicos:
// canónico (inglés, lo que se persiste) y display (coreano, lo que ve el
// usuario). Normalize/Localize son pass-through para valores desconocidos;
// la validación es una responsabilidad aparte (Valid*).
package vocab

// Species define las especies soportadas.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Gender define el sexo de la mascota.
// @Enum male, female, spayed
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderSpayed Gender = "spayed"
)

// Intensity define la intensidad del llanto.
// @Enum low, medium, high
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// State define el estado emocional inferido de un llanto.
// El conjunto permitido depende de la especie (ver StatesFor).
type State string

const (
	StateAnger  State = "anger"
	StatePlay   State = "play"
	StateHappy  State = "happy"
	StateSad    State = "sad"
	StateHunger State = "hunger"
	StateLonely State = "lonely"
)

var speciesToKorean = map[string]string{
	"dog": "개",
	"cat": "고양이",
}

var genderToKorean = map[string]string{
	"male":   "수컷",
	"female": "암컷",
	"spayed": "중성화됨",
}

var intensityToKorean = map[string]string{
	"low":    "낮음",
	"medium": "중간",
	"high":   "높음",
}

// happy es común a ambas especies (misma traducción);
// el resto de cada set es disjunto.
var dogStateToKorean = map[string]string{
	"anger": "화남",
	"play":  "놀고 싶음",
	"happy": "행복함",
	"sad":   "슬픔",
}

var catStateToKorean = map[string]string{
	"happy":  "행복함",
	"hunger": "배고픔",
	"lonely": "외로움",
}

var (
	stateToKorean = mergeMaps(dogStateToKorean, catStateToKorean)

	koreanToSpecies   = invert(speciesToKorean)
	koreanToGender    = invert(genderToKorean)
	koreanToIntensity = invert(intensityToKorean)
	koreanToState     = invert(stateToKorean)
)

var dogStates = []State{StateAnger, StatePlay, StateHappy, StateSad}
var catStates = []State{StateHappy, StateHunger, StateLonely}

func mergeMaps(ms ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func normalize(v string, koToEn map[string]string) string {
	if en, ok := koToEn[v]; ok {
		return en
	}
	return v
}

func localize(v string, enToKo map[string]string) string {
	if ko, ok := enToKo[v]; ok {
		return ko
	}
	return v
}

// NormalizeSpecies convierte display→canónico; pass-through si no matchea.
func NormalizeSpecies(v string) string { return normalize(v, koreanToSpecies) }

func NormalizeGender(v string) string { return normalize(v, koreanToGender) }

func NormalizeIntensity(v string) string { return normalize(v, koreanToIntensity) }

func NormalizeState(v string) string { return normalize(v, koreanToState) }

// LocalizeSpecies convierte canónico→display; pass-through si no matchea.
func LocalizeSpecies(v string) string { return localize(v, speciesToKorean) }

func LocalizeGender(v string) string { return localize(v, genderToKorean) }

func LocalizeIntensity(v string) string { return localize(v, intensityToKorean) }

func LocalizeState(v string) string { return localize(v, stateToKorean) }

// ValidSpecies acepta solo la forma canónica (normalizar antes).
func ValidSpecies(v string) bool {
	_, ok := speciesToKorean[v]
	return ok
}

func ValidGender(v string) bool {
	_, ok := genderToKorean[v]
	return ok
}

func ValidIntensity(v string) bool {
	_, ok := intensityToKorean[v]
	return ok
}

// ValidState acepta cualquier estado canónico sin mirar especie.
func ValidState(v string) bool {
	_, ok := stateToKorean[v]
	return ok
}

// StatesFor devuelve el set de estados permitido para una especie.
// Especie desconocida => nil.
func StatesFor(species string) []State {
	switch Species(species) {
	case SpeciesDog:
		return dogStates
	case SpeciesCat:
		return catStates
	default:
		return nil
	}
}

// ValidStateFor valida la regla especie⇄estado (state debe estar en forma
// canónica; ver NormalizeState).
func ValidStateFor(species, state string) bool {
	for _, s := range StatesFor(species) {
		if string(s) == state {
			return true
		}
	}
	return false
}
