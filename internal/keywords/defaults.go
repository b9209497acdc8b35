package keywords

// FallbackCategory is the catch-all category returned when no classifier
// is confident enough. The scorer and the arbiter must agree on this
// name for fallback detection and suggestion dedup to work.
const FallbackCategory = "Outros"

// DefaultTable returns the compiled-in keyword table covering common
// Brazilian transaction descriptions.
func DefaultTable() *Table {
	table, err := NewTable(map[string][]string{
		"Alimentação": {
			"mercado", "supermercado", "padaria", "restaurante", "lanchonete",
			"ifood", "rappi", "pizzaria", "hamburgueria", "açougue",
			"hortifruti", "feira", "bar", "cafeteria", "delivery",
		},
		"Transporte": {
			"uber", "99", "taxi", "metrô", "metro", "ônibus", "onibus",
			"combustível", "combustivel", "gasolina", "etanol", "posto",
			"estacionamento", "pedágio", "pedagio", "bilhete",
		},
		"Moradia": {
			"aluguel", "condomínio", "condominio", "luz", "energia", "água",
			"agua", "gás", "gas", "internet", "iptu", "reforma", "móveis",
			"moveis",
		},
		"Saúde": {
			"farmácia", "farmacia", "drogaria", "médico", "medico",
			"consulta", "exame", "dentista", "academia", "plano", "hospital",
			"laboratório", "laboratorio",
		},
		"Educação": {
			"escola", "faculdade", "curso", "livraria", "livro", "mensalidade",
			"material", "apostila", "idiomas",
		},
		"Lazer": {
			"cinema", "show", "teatro", "netflix", "spotify", "streaming",
			"jogo", "viagem", "parque", "ingresso", "festa",
		},
		"Compras": {
			"shopping", "loja", "magazine", "amazon", "mercadolivre", "shein",
			"shopee", "roupa", "calçado", "calcado", "eletrônico",
			"eletronico", "presente",
		},
		"Serviços": {
			"cabeleireiro", "barbearia", "manicure", "lavanderia", "assinatura",
			"seguro", "cartório", "cartorio", "banco", "tarifa", "anuidade",
			"telefone", "celular",
		},
		"Viagem": {
			"hotel", "pousada", "hostel", "passagem", "aéreo", "aereo",
			"airbnb", "rodoviária", "rodoviaria", "aeroporto", "latam", "gol",
			"azul",
		},
		FallbackCategory: {},
	})
	if err != nil {
		// The compiled-in table is a constant; a construction failure is
		// a programming error.
		panic(err)
	}
	return table
}
