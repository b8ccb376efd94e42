package practice

import "github.com/deviuno/ouse-passar-practice/internal/domain"

// fallbackSet is the built-in question set substituted when free-practice
// resolution fails or matches nothing. Small by design: it only keeps the
// learner practicing until the store recovers.
var fallbackSet = []domain.Question{
	{
		ID:        -1,
		Subject:   "Direito Constitucional",
		Topic:     "Princípios Fundamentais",
		Statement: "<p>São fundamentos da República Federativa do Brasil, EXCETO:</p>",
		Alternatives: []domain.Alternative{
			{Label: "A", Text: "a soberania"},
			{Label: "B", Text: "a cidadania"},
			{Label: "C", Text: "a dignidade da pessoa humana"},
			{Label: "D", Text: "a garantia do desenvolvimento nacional"},
		},
		CorrectLabel: "D",
		Comment:      "A garantia do desenvolvimento nacional é objetivo fundamental (art. 3º), não fundamento (art. 1º).",
	},
	{
		ID:        -2,
		Subject:   "Português",
		Topic:     "Concordância Verbal",
		Statement: "<p>Assinale a alternativa em que a concordância verbal está correta:</p>",
		Alternatives: []domain.Alternative{
			{Label: "A", Text: "Fazem dois anos que estudo para concursos."},
			{Label: "B", Text: "Houveram muitos candidatos na prova."},
			{Label: "C", Text: "Faz dois anos que estudo para concursos."},
			{Label: "D", Text: "Existe muitas vagas neste edital."},
		},
		CorrectLabel: "C",
		Comment:      "O verbo fazer indicando tempo decorrido é impessoal e fica na terceira pessoa do singular.",
	},
	{
		ID:        -3,
		Subject:   "Raciocínio Lógico",
		Topic:     "Proposições",
		Statement: "<p>A negação de \"Todos os candidatos foram aprovados\" é:</p>",
		Alternatives: []domain.Alternative{
			{Label: "A", Text: "Nenhum candidato foi aprovado."},
			{Label: "B", Text: "Pelo menos um candidato não foi aprovado."},
			{Label: "C", Text: "Todos os candidatos foram reprovados."},
			{Label: "D", Text: "Alguns candidatos foram aprovados."},
		},
		CorrectLabel: "B",
	},
}

// fallbackQuestions returns a fresh copy so a session can never mutate
// the shared set.
func fallbackQuestions() []domain.Question {
	out := make([]domain.Question, len(fallbackSet))
	copy(out, fallbackSet)
	return out
}
