package worker

// recibo_worker.go
// Processes receipt jobs from QueueRecibo: renders the thermal PDF for a
// delivered order and, when the payload carries an email, chains an email job
// with the generated file attached.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/misterzhermit/URSTORE/internal/infra"
	"github.com/misterzhermit/URSTORE/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReciboJobPayload is the job envelope sent to QueueRecibo.
type ReciboJobPayload struct {
	PedidoID string `json:"pedido_id"`
	Email    string `json:"email,omitempty"`
}

type ReciboWorker struct {
	pedidos     repository.PedidoRepository
	produtos    repository.ProdutoRepository
	empresas    repository.EmpresaRepository
	dispatcher  *Dispatcher
	storagePath string
}

func NewReciboWorker(
	pedidos repository.PedidoRepository,
	produtos repository.ProdutoRepository,
	empresas repository.EmpresaRepository,
	dispatcher *Dispatcher,
	storagePath string,
) *ReciboWorker {
	return &ReciboWorker{
		pedidos:     pedidos,
		produtos:    produtos,
		empresas:    empresas,
		dispatcher:  dispatcher,
		storagePath: storagePath,
	}
}

// Process renders the receipt PDF for the order in the payload.
func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("recibo_worker: invalid payload: %w", err)
	}

	pedidoID, err := uuid.Parse(payload.PedidoID)
	if err != nil {
		return fmt.Errorf("recibo_worker: invalid pedido_id %q: %w", payload.PedidoID, err)
	}

	pedido, err := w.pedidos.FindByID(ctx, pedidoID)
	if err != nil {
		return fmt.Errorf("recibo_worker: load pedido: %w", err)
	}

	produtos, err := w.produtos.List(ctx)
	if err != nil {
		return fmt.Errorf("recibo_worker: load produtos: %w", err)
	}
	nomes := make(map[uuid.UUID]string, len(produtos))
	for _, p := range produtos {
		nomes[p.ID] = p.Nome
	}

	// Missing business profile is fine — the PDF falls back to a default header
	empresaNome := ""
	if empresa, err := w.empresas.Get(ctx); err == nil && empresa != nil {
		empresaNome = empresa.Nome
	}

	pdfPath, err := infra.GerarReciboPDF(pedido, nomes, empresaNome, w.storagePath)
	if err != nil {
		return fmt.Errorf("recibo_worker: generate PDF: %w", err)
	}
	log.Info().Str("pedido_id", payload.PedidoID).Str("pdf", pdfPath).Msg("recibo_worker: receipt generated")

	if payload.Email != "" && w.dispatcher != nil {
		emailJob := EmailJobPayload{
			ToEmail: payload.Email,
			Subject: fmt.Sprintf("Recibo do pedido — %s", pedido.ClienteNome),
			Body:    fmt.Sprintf("Olá %s,\n\nSegue em anexo o recibo do seu pedido de %s.\n\nObrigado!", pedido.ClienteNome, pedido.Data),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Error().Err(err).Str("pedido_id", payload.PedidoID).Msg("recibo_worker: failed to enqueue email")
		}
	}
	return nil
}
