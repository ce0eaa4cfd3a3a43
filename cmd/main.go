package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/CastelGestao/api-honorarios/internal/auth"
	"github.com/CastelGestao/api-honorarios/internal/empresa"
	"github.com/CastelGestao/api-honorarios/internal/fechamento"
	"github.com/CastelGestao/api-honorarios/internal/lancamento"
	"github.com/CastelGestao/api-honorarios/internal/lote"
	"github.com/CastelGestao/api-honorarios/internal/meta"
	"github.com/CastelGestao/api-honorarios/internal/usuario"
	"github.com/CastelGestao/api-honorarios/internal/utils"
	"github.com/CastelGestao/api-honorarios/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET não definida")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&empresa.Empresa{},
		&lote.LoteLancamento{},
		&fechamento.Fechamento{},
		&lancamento.LancamentoHonorario{},
		&meta.Meta{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	if err := empresa.Seed(database); err != nil {
		log.Fatal("Erro no seed de empresas:", err)
	}

	// Handlers
	authHandler := auth.NewHandler(database)
	usuarioHandler := usuario.NewHandler(database)
	empresaHandler := empresa.NewHandler(database)
	lancamentoHandler := lancamento.NewHandler(database)
	loteHandler := lote.NewHandler(database)
	fechamentoHandler := fechamento.NewHandler(database)
	metaHandler := meta.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas de diagnóstico
	r.HandleFunc("/test-connection", testConnection).Methods("GET")
	r.HandleFunc("/test-db", testDB(database)).Methods("GET")

	// Autenticação
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Rotas de usuários
	r.HandleFunc("/users", usuarioHandler.Criar).Methods("POST")
	r.HandleFunc("/users", usuarioHandler.Listar).Methods("GET")
	r.HandleFunc("/users/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/users/{id}", usuarioHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/users/{id}", usuarioHandler.Deletar).Methods("DELETE")

	// Rotas de lotes
	r.HandleFunc("/lotes", loteHandler.Criar).Methods("POST")
	r.HandleFunc("/lotes", loteHandler.Listar).Methods("GET")
	r.HandleFunc("/lotes/{id}", loteHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/lotes/{id}", loteHandler.Deletar).Methods("DELETE")

	// Rotas de fechamentos
	r.HandleFunc("/fechamentos", fechamentoHandler.Criar).Methods("POST")
	r.HandleFunc("/fechamentos", fechamentoHandler.Listar).Methods("GET")
	r.HandleFunc("/fechamentos/{id}", fechamentoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/fechamentos/{id}", fechamentoHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/fechamentos/{id}", fechamentoHandler.Deletar).Methods("DELETE")

	// Rotas de metas
	r.HandleFunc("/metas", metaHandler.Criar).Methods("POST")
	r.HandleFunc("/metas", metaHandler.Listar).Methods("GET")
	r.HandleFunc("/metas/{id}", metaHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/metas/{id}", metaHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/metas/{id}", metaHandler.Deletar).Methods("DELETE")

	// Rotas protegidas por token (empresas e lançamentos, como no front)
	protegido := r.PathPrefix("/").Subrouter()
	protegido.Use(auth.MiddlewareAutenticacao)

	protegido.HandleFunc("/auth/validate-token", authHandler.ValidateToken).Methods("GET")

	protegido.HandleFunc("/empresas", empresaHandler.Criar).Methods("POST")
	protegido.HandleFunc("/empresas", empresaHandler.Listar).Methods("GET")

	protegido.HandleFunc("/lancamentos", lancamentoHandler.Criar).Methods("POST")
	protegido.HandleFunc("/lancamentos", lancamentoHandler.Listar).Methods("GET")
	protegido.HandleFunc("/lancamentos/{id}", lancamentoHandler.BuscarPorID).Methods("GET")
	protegido.HandleFunc("/lancamentos/{id}", lancamentoHandler.Atualizar).Methods("PUT")
	protegido.HandleFunc("/lancamentos/{id}", lancamentoHandler.Deletar).Methods("DELETE")

	handler := cors.AllowAll().Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// testConnection confirma que a API está de pé
func testConnection(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Conexão com API realizada com sucesso",
	})
}

// testDB roda uma query trivial para confirmar a conexão com o banco
func testDB(database *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.Exec("SELECT 1").Error; err != nil {
			log.Println("erro na conexão com o banco:", err)
			utils.RespondJSON(w, http.StatusInternalServerError, map[string]string{
				"message": "Erro ao conectar com o banco de dados",
			})
			return
		}
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"message":  "Conexão com o banco de dados realizada com sucesso!",
			"database": os.Getenv("DB_NAME"),
			"host":     os.Getenv("DB_HOST"),
		})
	}
}
