package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterzhermit/URSTORE/internal/dto"
	"github.com/misterzhermit/URSTORE/internal/model"
	"github.com/misterzhermit/URSTORE/internal/repository"
	"github.com/misterzhermit/URSTORE/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PedidoService interface {
	Criar(ctx context.Context, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error)
	Listar(ctx context.Context) ([]dto.PedidoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarPedidoRequest) (*dto.PedidoResponse, error)
	// AvancarStatus moves pendente→em_separacao→entregue; a delivered order
	// cannot advance further.
	AvancarStatus(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	IniciarSeparacao(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	// ConfirmarSeparacao commits the checklist edits and puts the order back
	// in pendente, ready for delivery.
	ConfirmarSeparacao(ctx context.Context, id uuid.UUID, req dto.ConfirmarSeparacaoRequest) (*dto.PedidoResponse, error)
	DevolverItem(ctx context.Context, id uuid.UUID, indice int, req dto.DevolverItemRequest) (*dto.PedidoResponse, error)
	// QuitarFiado settles every fiado order of the client in one go.
	QuitarFiado(ctx context.Context, clienteNome string) (*dto.QuitarFiadoResponse, error)
}

type pedidoService struct {
	repo        repository.PedidoRepository
	produtoRepo repository.ProdutoRepository
	perdas      PerdaService
	dispatcher  *worker.Dispatcher
}

func NewPedidoService(
	repo repository.PedidoRepository,
	produtoRepo repository.ProdutoRepository,
	perdas PerdaService,
	dispatcher *worker.Dispatcher,
) PedidoService {
	return &pedidoService{repo: repo, produtoRepo: produtoRepo, perdas: perdas, dispatcher: dispatcher}
}

// ── Criar ─────────────────────────────────────────────────────────────────────
// Pre-flight resolution outside the TX, then one transaction creating the
// order and decrementing availability (clamped at zero). The sale price is
// locked into each item at creation and never re-read afterwards.

func (s *pedidoService) Criar(ctx context.Context, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error) {
	type resolvido struct {
		produtoID uuid.UUID
		qtd       int
		preco     decimal.Decimal
	}
	var itens []resolvido
	total := decimal.Zero
	for _, item := range req.Itens {
		pid, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			return nil, fmt.Errorf("produto_id inválido: %w", err)
		}
		p, err := s.produtoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("produto %s não encontrado", item.ProdutoID)
		}
		total = total.Add(p.PrecoVenda.Mul(decimal.NewFromInt(int64(item.Qtd))))
		itens = append(itens, resolvido{produtoID: pid, qtd: item.Qtd, preco: p.PrecoVenda})
	}

	pagamento := req.Pagamento
	if pagamento == "" {
		pagamento = "fiado"
	}

	pedido := &model.Pedido{
		ClienteNome: req.ClienteNome,
		ClienteFone: req.ClienteFone,
		Total:       total,
		Status:      "pendente",
		Pagamento:   pagamento,
		Hora:        horaAgora(),
		Data:        hoje(),
	}
	for _, r := range itens {
		pedido.Itens = append(pedido.Itens, model.PedidoItem{
			ProdutoID:     r.produtoID,
			Qtd:           r.qtd,
			PrecoNoPedido: r.preco,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, pedido); err != nil {
			return err
		}
		for _, r := range itens {
			if err := s.produtoRepo.AjustarEstoqueTx(tx, r.produtoID, 0, -r.qtd); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) Listar(ctx context.Context) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PedidoResponse, len(pedidos))
	for i := range pedidos {
		resp[i] = *pedidoToResponse(&pedidos[i])
	}
	return resp, nil
}

func (s *pedidoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("pedido não encontrado")
	}
	return pedidoToResponse(pedido), nil
}

// ── Atualizar ─────────────────────────────────────────────────────────────────
// Field-level merge. When itens is supplied the whole item set is replaced
// and the total recomputed here: prices stay locked for products already in
// the order, new products enter at their current sale price. Stock is not
// re-adjusted by an item edit.

func (s *pedidoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarPedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("pedido não encontrado")
	}

	campos := map[string]interface{}{}
	if req.ClienteNome != nil {
		campos["cliente_nome"] = *req.ClienteNome
	}
	if req.ClienteFone != nil {
		campos["cliente_fone"] = *req.ClienteFone
	}
	// A forced status is tolerated; AvancarStatus is the normal path.
	if req.Status != nil {
		campos["status"] = *req.Status
	}
	if req.Pagamento != nil {
		campos["pagamento"] = *req.Pagamento
	}

	var novosItens []model.PedidoItem
	if req.Itens != nil {
		precoTravado := make(map[uuid.UUID]decimal.Decimal, len(pedido.Itens))
		for _, item := range pedido.Itens {
			precoTravado[item.ProdutoID] = item.PrecoNoPedido
		}
		total := decimal.Zero
		for _, item := range req.Itens {
			pid, err := uuid.Parse(item.ProdutoID)
			if err != nil {
				return nil, fmt.Errorf("produto_id inválido: %w", err)
			}
			preco, ok := precoTravado[pid]
			if !ok {
				p, err := s.produtoRepo.FindByID(ctx, pid)
				if err != nil {
					return nil, fmt.Errorf("produto %s não encontrado", item.ProdutoID)
				}
				preco = p.PrecoVenda
			}
			total = total.Add(preco.Mul(decimal.NewFromInt(int64(item.Qtd))))
			novosItens = append(novosItens, model.PedidoItem{
				ProdutoID:     pid,
				Qtd:           item.Qtd,
				PrecoNoPedido: preco,
			})
		}
		campos["total"] = total
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if len(campos) > 0 {
			if err := s.repo.UpdateCamposTx(tx, id, campos); err != nil {
				return err
			}
		}
		if req.Itens != nil {
			return s.repo.ReplaceItensTx(tx, id, novosItens)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	atualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return pedidoToResponse(atualizado), nil
}

func (s *pedidoService) AvancarStatus(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("pedido não encontrado")
	}

	var novo string
	switch pedido.Status {
	case "pendente":
		novo = "em_separacao"
	case "em_separacao":
		novo = "entregue"
	default:
		return nil, errors.New("pedido já entregue")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.UpdateCamposTx(tx, id, map[string]interface{}{"status": novo})
	})
	if txErr != nil {
		return nil, txErr
	}
	pedido.Status = novo

	// Receipt generation is best-effort and fully async.
	if novo == "entregue" && s.dispatcher != nil {
		_ = s.dispatcher.EnqueueRecibo(ctx, worker.ReciboJobPayload{PedidoID: pedido.ID.String()})
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) IniciarSeparacao(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("pedido não encontrado")
	}

	itens := make([]model.PedidoItem, len(pedido.Itens))
	for i, item := range pedido.Itens {
		qtd := item.Qtd
		item.QtdOriginal = &qtd
		item.Coletado = false
		itens[i] = item
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.ReplaceItensTx(tx, id, itens); err != nil {
			return err
		}
		return s.repo.UpdateCamposTx(tx, id, map[string]interface{}{"status": "em_separacao"})
	})
	if txErr != nil {
		return nil, txErr
	}
	pedido.Status = "em_separacao"
	pedido.Itens = itens
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) ConfirmarSeparacao(ctx context.Context, id uuid.UUID, req dto.ConfirmarSeparacaoRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("pedido não encontrado")
	}
	if len(req.Itens) != len(pedido.Itens) {
		return nil, errors.New("checklist de separação não corresponde aos itens do pedido")
	}

	itens := make([]model.PedidoItem, len(pedido.Itens))
	total := decimal.Zero
	for i, item := range pedido.Itens {
		item.Qtd = req.Itens[i].Qtd
		item.Coletado = req.Itens[i].Coletado
		total = total.Add(item.PrecoNoPedido.Mul(decimal.NewFromInt(int64(item.Qtd))))
		itens[i] = item
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.ReplaceItensTx(tx, id, itens); err != nil {
			return err
		}
		// Confirming separation re-enters pendente: the order is ready for
		// delivery, not delivered.
		return s.repo.UpdateCamposTx(tx, id, map[string]interface{}{
			"total":  total,
			"status": "pendente",
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	pedido.Itens = itens
	pedido.Total = total
	pedido.Status = "pendente"
	return pedidoToResponse(pedido), nil
}

// DevolverItem removes one item and recomputes the total. The returned
// quantity either re-enters availability or becomes a formal loss with reason
// "devolucao" — the write-off register stays authoritative either way.
func (s *pedidoService) DevolverItem(ctx context.Context, id uuid.UUID, indice int, req dto.DevolverItemRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("pedido não encontrado")
	}
	if indice < 0 || indice >= len(pedido.Itens) {
		return nil, errors.New("item inexistente no pedido")
	}
	devolvido := pedido.Itens[indice]

	var produto *model.Produto
	if !req.DevolverAoEstoque {
		produto, err = s.produtoRepo.FindByID(ctx, devolvido.ProdutoID)
		if err != nil {
			return nil, errors.New("produto do item devolvido não encontrado")
		}
	}

	restantes := make([]model.PedidoItem, 0, len(pedido.Itens)-1)
	total := decimal.Zero
	for i, item := range pedido.Itens {
		if i == indice {
			continue
		}
		total = total.Add(item.PrecoNoPedido.Mul(decimal.NewFromInt(int64(item.Qtd))))
		restantes = append(restantes, item)
	}
	status := pedido.Status
	if len(restantes) == 0 {
		status = "entregue"
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.ReplaceItensTx(tx, id, restantes); err != nil {
			return err
		}
		if err := s.repo.UpdateCamposTx(tx, id, map[string]interface{}{
			"total":  total,
			"status": status,
		}); err != nil {
			return err
		}
		if req.DevolverAoEstoque {
			return s.produtoRepo.AjustarEstoqueTx(tx, devolvido.ProdutoID, 0, devolvido.Qtd)
		}
		return s.perdas.RegistrarDevolucaoTx(tx, produto, devolvido.Qtd)
	})
	if txErr != nil {
		return nil, txErr
	}
	pedido.Itens = restantes
	pedido.Total = total
	pedido.Status = status
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) QuitarFiado(ctx context.Context, clienteNome string) (*dto.QuitarFiadoResponse, error) {
	pedidos, err := s.repo.ListFiadoPorCliente(ctx, clienteNome)
	if err != nil {
		return nil, err
	}
	if len(pedidos) == 0 {
		return nil, errors.New("nenhum pedido fiado para este cliente")
	}

	valor := decimal.Zero
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, p := range pedidos {
			if err := s.repo.UpdateCamposTx(tx, p.ID, map[string]interface{}{
				"pagamento": "pago",
				"status":    "entregue",
			}); err != nil {
				return err
			}
			valor = valor.Add(p.Total)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &dto.QuitarFiadoResponse{
		ClienteNome:     clienteNome,
		PedidosQuitados: len(pedidos),
		ValorQuitado:    valor,
	}, nil
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	itens := make([]dto.ItemPedidoResponse, 0, len(p.Itens))
	for _, item := range p.Itens {
		itens = append(itens, dto.ItemPedidoResponse{
			ProdutoID:     item.ProdutoID.String(),
			Qtd:           item.Qtd,
			QtdOriginal:   item.QtdOriginal,
			PrecoNoPedido: item.PrecoNoPedido,
			Coletado:      item.Coletado,
		})
	}
	return &dto.PedidoResponse{
		ID:          p.ID.String(),
		ClienteNome: p.ClienteNome,
		ClienteFone: p.ClienteFone,
		Itens:       itens,
		Total:       p.Total,
		Status:      p.Status,
		Pagamento:   p.Pagamento,
		Hora:        p.Hora,
		Data:        p.Data,
	}
}
