package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:9000"
	fixedID = "PED-000000000001"
)

var ceps = []string{"04538-133", "20040-020", "40020-000", "80010-000", "69005-000"}

func main() {
	for {
		var wg sync.WaitGroup
		for n := rand.Intn(10); n > 0; n-- {
			wg.Add(1)
			go func() {
				defer wg.Done()
				doRequest()
			}()
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	if rand.Intn(2) == 0 {
		doQuote()
		return
	}

	id := fixedID
	if rand.Intn(5) == 0 {
		id = "PED-" + randomID(12)
	}

	url := baseURL + "/pedidos/" + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request error:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}

func doQuote() {
	body := fmt.Sprintf(
		`{"cep_destino":"%s","produtos":[{"produto_id":"caderno-a5-pautado","quantidade":%d}],"valor_pedido":%d}`,
		ceps[rand.Intn(len(ceps))], 1+rand.Intn(5), rand.Intn(30000),
	)

	url := baseURL + "/frete/calcular"
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		fmt.Println("request error:", err)
	} else {
		fmt.Println("POST", url, "->", resp.Status)
		resp.Body.Close()
	}
}
