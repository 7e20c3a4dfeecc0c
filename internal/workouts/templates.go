package workouts

import "strings"

// Template is the static plan a workout challenge expands to.
type Template struct {
	Name        string
	Description string
	Type        WorkoutType
	Duration    int // minutes
	Calories    int
	Exercises   []Exercise
	Notes       string
}

var templates = map[string]Template{
	"Treino de Força - Peito e Tríceps": {
		Name:        "Treino de Força - Peito e Tríceps",
		Description: "Treino focado em peito e tríceps com exercícios compostos e isolados",
		Type:        WorkoutTypeStrength,
		Duration:    45,
		Calories:    300,
		Exercises: []Exercise{
			{Name: "Supino reto", Sets: 4, Reps: "8-12", Weight: "moderado"},
			{Name: "Supino inclinado com halteres", Sets: 3, Reps: "10-12", Weight: "moderado"},
			{Name: "Tríceps na polia", Sets: 3, Reps: "12-15", Weight: "leve"},
			{Name: "Mergulho no banco", Sets: 3, Reps: "até a falha", Weight: "peso corporal"},
		},
		Notes: "Descanse 60-90 segundos entre as séries",
	},
	"Treino de Força - Costas e Bíceps": {
		Name:        "Treino de Força - Costas e Bíceps",
		Description: "Treino de puxada para costas e bíceps",
		Type:        WorkoutTypeStrength,
		Duration:    45,
		Calories:    280,
		Exercises: []Exercise{
			{Name: "Puxada frontal", Sets: 4, Reps: "8-12", Weight: "moderado"},
			{Name: "Remada curvada", Sets: 4, Reps: "8-10", Weight: "moderado"},
			{Name: "Rosca direta", Sets: 3, Reps: "10-12", Weight: "leve"},
			{Name: "Rosca martelo", Sets: 3, Reps: "12", Weight: "leve"},
		},
		Notes: "Mantenha a coluna neutra nas remadas",
	},
	"Treino de Força - Pernas": {
		Name:        "Treino de Força - Pernas",
		Description: "Treino completo de membros inferiores",
		Type:        WorkoutTypeStrength,
		Duration:    50,
		Calories:    350,
		Exercises: []Exercise{
			{Name: "Agachamento livre", Sets: 4, Reps: "8-10", Weight: "moderado"},
			{Name: "Leg press", Sets: 4, Reps: "10-12", Weight: "moderado"},
			{Name: "Cadeira extensora", Sets: 3, Reps: "12-15", Weight: "leve"},
			{Name: "Mesa flexora", Sets: 3, Reps: "12-15", Weight: "leve"},
			{Name: "Panturrilha em pé", Sets: 4, Reps: "15-20", Weight: "moderado"},
		},
		Notes: "Aqueça bem os joelhos antes de começar",
	},
	"Cardio HIIT - 20 minutos": {
		Name:        "Cardio HIIT - 20 minutos",
		Description: "Treino intervalado de alta intensidade",
		Type:        WorkoutTypeCardio,
		Duration:    20,
		Calories:    250,
		Exercises: []Exercise{
			{Name: "Polichinelo", Sets: 4, Reps: "40s", Weight: "alta intensidade"},
			{Name: "Burpee", Sets: 4, Reps: "40s", Weight: "alta intensidade"},
			{Name: "Corrida estacionária", Sets: 4, Reps: "40s", Weight: "alta intensidade"},
			{Name: "Escalador", Sets: 4, Reps: "40s", Weight: "alta intensidade"},
		},
		Notes: "20 segundos de descanso entre os exercícios",
	},
	"Treino Funcional - Corpo Inteiro": {
		Name:        "Treino Funcional - Corpo Inteiro",
		Description: "Circuito funcional para o corpo todo",
		Type:        WorkoutTypeFunctional,
		Duration:    40,
		Calories:    320,
		Exercises: []Exercise{
			{Name: "Agachamento com salto", Sets: 3, Reps: "12", Weight: "peso corporal"},
			{Name: "Flexão de braço", Sets: 3, Reps: "10-15", Weight: "peso corporal"},
			{Name: "Kettlebell swing", Sets: 3, Reps: "15", Weight: "moderado"},
			{Name: "Prancha", Sets: 3, Reps: "45s", Weight: "peso corporal"},
			{Name: "Avanço alternado", Sets: 3, Reps: "12 cada perna", Weight: "peso corporal"},
		},
		Notes: "Execute em circuito com 1 minuto de descanso entre as voltas",
	},
	"Cardio - Corrida Leve 5km": {
		Name:        "Cardio - Corrida Leve 5km",
		Description: "Corrida contínua em ritmo confortável",
		Type:        WorkoutTypeEndurance,
		Duration:    35,
		Calories:    350,
		Exercises: []Exercise{
			{Name: "Caminhada de aquecimento", Sets: 1, Reps: "5min", Weight: "leve"},
			{Name: "Corrida contínua", Sets: 1, Reps: "5km", Weight: "moderado"},
			{Name: "Caminhada de desaquecimento", Sets: 1, Reps: "5min", Weight: "leve"},
		},
		Notes: "Mantenha um ritmo em que consiga conversar",
	},
	"Treino de Core - Abdômen": {
		Name:        "Treino de Core - Abdômen",
		Description: "Fortalecimento do abdômen e da lombar",
		Type:        WorkoutTypeCore,
		Duration:    25,
		Calories:    150,
		Exercises: []Exercise{
			{Name: "Prancha frontal", Sets: 3, Reps: "45s", Weight: "peso corporal"},
			{Name: "Prancha lateral", Sets: 3, Reps: "30s cada lado", Weight: "peso corporal"},
			{Name: "Abdominal bicicleta", Sets: 3, Reps: "20", Weight: "peso corporal"},
			{Name: "Elevação de pernas", Sets: 3, Reps: "15", Weight: "peso corporal"},
		},
		Notes: "Contraia o abdômen durante todo o movimento",
	},
	"Treino de Flexibilidade - Alongamento": {
		Name:        "Treino de Flexibilidade - Alongamento",
		Description: "Sessão de alongamento para o corpo todo",
		Type:        WorkoutTypeFlexibility,
		Duration:    30,
		Calories:    100,
		Exercises: []Exercise{
			{Name: "Alongamento de posteriores", Sets: 2, Reps: "30s", Weight: "leve"},
			{Name: "Alongamento de quadríceps", Sets: 2, Reps: "30s cada perna", Weight: "leve"},
			{Name: "Alongamento de ombros", Sets: 2, Reps: "30s cada lado", Weight: "leve"},
			{Name: "Postura da criança", Sets: 2, Reps: "60s", Weight: "leve"},
		},
		Notes: "Respire fundo e não force além do confortável",
	},
	"Treino de Equilíbrio - Estabilidade": {
		Name:        "Treino de Equilíbrio - Estabilidade",
		Description: "Exercícios de equilíbrio e estabilidade articular",
		Type:        WorkoutTypeBalance,
		Duration:    25,
		Calories:    120,
		Exercises: []Exercise{
			{Name: "Apoio unipodal", Sets: 3, Reps: "30s cada perna", Weight: "peso corporal"},
			{Name: "Avanço com pausa", Sets: 3, Reps: "10 cada perna", Weight: "peso corporal"},
			{Name: "Ponte de glúteo unilateral", Sets: 3, Reps: "12 cada perna", Weight: "peso corporal"},
		},
		Notes: "Use uma parede como apoio se precisar",
	},
}

// LookupTemplate finds the template for the exact (trimmed) challenge title.
func LookupTemplate(title string) (Template, bool) {
	tmpl, ok := templates[strings.TrimSpace(title)]
	return tmpl, ok
}

// workout builds an unsaved workout from the template. Exercises are copied so the
// table itself is never shared with callers.
func (t Template) workout(userID int) Workout {
	exercises := make([]Exercise, len(t.Exercises))
	copy(exercises, t.Exercises)
	return Workout{
		UserID:      userID,
		Name:        t.Name,
		Description: t.Description,
		Type:        t.Type,
		Duration:    t.Duration,
		Calories:    t.Calories,
		Exercises:   exercises,
		Notes:       t.Notes,
		Source:      SourceUserCreated,
	}
}
