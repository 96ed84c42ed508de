package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/xavierca1/whatsapp-dispatch/internal/config"
	"github.com/xavierca1/whatsapp-dispatch/internal/infra/integration/dispatchapi"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	templateID := os.Getenv("SAMPLE_TEMPLATE_ID")
	userID := os.Getenv("SAMPLE_USER_ID")
	if templateID == "" || userID == "" {
		log.Fatal("❌ SAMPLE_TEMPLATE_ID e SAMPLE_USER_ID devem estar configurados no .env")
	}

	baseURL := config.BaseURL()

	client := dispatchapi.NewClient(baseURL, 15*time.Second)

	input := dispatchapi.DispatchRequest{
		TrustID:    os.Getenv("SAMPLE_TRUST_ID"),
		TemplateID: templateID,
		UserID:     userID,
		MessageParams: map[string]string{
			"name": "Joao Teste da Silva",
			"code": "4821",
		},
	}

	fmt.Println("🔄 Enviando mensagem WhatsApp...")
	fmt.Printf("   Template: %s\n", input.TemplateID)
	fmt.Printf("   Usuário: %s\n\n", input.UserID)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	res, err := client.Send(ctx, input)
	if err != nil {
		log.Fatalf("Erro ao chamar %s: %v", baseURL, err)
	}

	if !res.Success {
		log.Fatalf("❌ Envio recusado (HTTP %d): %s", res.StatusCode, res.Error)
	}

	fmt.Printf("✅ Mensagem enviada! message_id: %s\n", res.MessageID)
}
