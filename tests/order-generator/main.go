package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Item struct {
	ProdutoID  string `json:"produto_id"`
	Quantidade int    `json:"quantidade"`
}

type CheckoutOrder struct {
	PedidoID      string `json:"pedido_id"`
	ClienteEmail  string `json:"cliente_email"`
	ValorSubtotal int64  `json:"valor_subtotal"`
	CriadoEm      string `json:"criado_em"`
	Itens         []Item `json:"itens"`
}

var products = []string{
	"caderno-a5-pautado",
	"caderno-a4-quadriculado",
	"caneta-gel-azul",
	"lapis-hb-12",
	"marcador-texto-kit",
	"mochila-escolar",
	"agenda-2027",
	"papel-sulfite-500",
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomOrder() CheckoutOrder {
	items := make([]Item, 0, 3)
	for n := 1 + rand.Intn(3); n > 0; n-- {
		items = append(items, Item{
			ProdutoID:  products[rand.Intn(len(products))],
			Quantidade: 1 + rand.Intn(5),
		})
	}
	return CheckoutOrder{
		PedidoID:      "PED-" + randomString(12),
		ClienteEmail:  fmt.Sprintf("cliente%d@example.com", rand.Intn(1000)),
		ValorSubtotal: int64(rand.Intn(30000) + 1000),
		CriadoEm:      time.Now().Format(time.RFC3339),
		Itens:         items,
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "checkout.orders",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("order generated", order.PedidoID)
		case <-ctx.Done():
			return
		}
	}
}
