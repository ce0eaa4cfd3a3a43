package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON serializa o corpo como JSON com o status informado.
func RespondJSON(w http.ResponseWriter, status int, corpo interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(corpo)
}

// RespondErro devolve o corpo de erro padrão da API: {"mensagem": "..."}.
func RespondErro(w http.ResponseWriter, status int, mensagem string) {
	RespondJSON(w, status, map[string]string{"mensagem": mensagem})
}

// RespondErros devolve as mensagens de validação coletadas sob a mesma chave.
func RespondErros(w http.ResponseWriter, status int, mensagens []string) {
	RespondJSON(w, status, map[string][]string{"mensagem": mensagens})
}
