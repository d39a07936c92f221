package service_test

// In-memory repository stubs. Services open no real transaction when the
// repository's DB() returns nil, so every *Tx method here simply ignores the
// tx argument.

import (
	"context"
	"strings"
	"time"

	"github.com/misterzhermit/URSTORE/internal/model"
	"github.com/misterzhermit/URSTORE/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func hojeStr() string { return time.Now().Format("2006-01-02") }

// ── Produto ──────────────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
	ordem    []uuid.UUID
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produtos[p.ID] = p
	r.ordem = append(r.ordem, p.ID)
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) List(_ context.Context) ([]model.Produto, error) {
	out := make([]model.Produto, 0, len(r.ordem))
	for _, id := range r.ordem {
		out = append(out, *r.produtos[id])
	}
	return out, nil
}

func (r *stubProdutoRepo) ListSemDisponivel(_ context.Context) ([]model.Produto, error) {
	var out []model.Produto
	for _, id := range r.ordem {
		if r.produtos[id].EstoqueDisponivel == 0 {
			out = append(out, *r.produtos[id])
		}
	}
	return out, nil
}

func (r *stubProdutoRepo) UpdateCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}) error {
	p, ok := r.produtos[id]
	if !ok {
		return nil // silent no-op, same as an UPDATE matching zero rows
	}
	if v, ok := campos["nome"]; ok {
		p.Nome = v.(string)
	}
	if v, ok := campos["emoji"]; ok {
		p.Emoji = v.(string)
	}
	if v, ok := campos["preco_venda"]; ok {
		p.PrecoVenda = v.(decimal.Decimal)
	}
	if v, ok := campos["preco_custo"]; ok {
		p.PrecoCusto = v.(decimal.Decimal)
	}
	if v, ok := campos["estoque_total"]; ok {
		p.EstoqueTotal = v.(int)
	}
	if v, ok := campos["estoque_disponivel"]; ok {
		p.EstoqueDisponivel = v.(int)
	}
	if v, ok := campos["ncm"]; ok {
		p.NCM = v.(*string)
	}
	return nil
}

func (r *stubProdutoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProdutoRepo) AtualizarCustoTx(_ *gorm.DB, id uuid.UUID, custo decimal.Decimal) error {
	if p, ok := r.produtos[id]; ok {
		p.PrecoCusto = custo
	}
	return nil
}

func (r *stubProdutoRepo) AjustarEstoqueTx(_ *gorm.DB, id uuid.UUID, deltaTotal, deltaDisponivel int) error {
	p, ok := r.produtos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.EstoqueTotal += deltaTotal
	if p.EstoqueTotal < 0 {
		p.EstoqueTotal = 0
	}
	p.EstoqueDisponivel += deltaDisponivel
	if p.EstoqueDisponivel < 0 {
		p.EstoqueDisponivel = 0
	}
	return nil
}

func (r *stubProdutoRepo) DB() *gorm.DB { return nil }

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

func seedProduto(r *stubProdutoRepo, nome string, venda, custo float64, total, disponivel int) *model.Produto {
	p := &model.Produto{
		Nome:              nome,
		PrecoVenda:        decimal.NewFromFloat(venda),
		PrecoCusto:        decimal.NewFromFloat(custo),
		EstoqueTotal:      total,
		EstoqueDisponivel: disponivel,
	}
	_ = r.Create(context.Background(), p)
	return p
}

// ── Coleta ───────────────────────────────────────────────────────────────────

type stubColetaRepo struct {
	itens        map[uuid.UUID]*model.ItemColeta
	ordem        []uuid.UUID
	divergencias []model.Divergencia
}

func newStubColetaRepo() *stubColetaRepo {
	return &stubColetaRepo{itens: make(map[uuid.UUID]*model.ItemColeta)}
}

func (r *stubColetaRepo) CreateTx(_ *gorm.DB, item *model.ItemColeta) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.itens[item.ID] = item
	r.ordem = append(r.ordem, item.ID)
	return nil
}

func (r *stubColetaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ItemColeta, error) {
	item, ok := r.itens[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubColetaRepo) List(_ context.Context) ([]model.ItemColeta, error) {
	var pendentes, coletados []model.ItemColeta
	for _, id := range r.ordem {
		if r.itens[id].Status == "pendente" {
			pendentes = append(pendentes, *r.itens[id])
		} else {
			coletados = append(coletados, *r.itens[id])
		}
	}
	return append(pendentes, coletados...), nil
}

func (r *stubColetaRepo) UpdateTx(_ *gorm.DB, item *model.ItemColeta) error {
	r.itens[item.ID] = item
	return nil
}

func (r *stubColetaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.itens, id)
	return nil
}

func (r *stubColetaRepo) FindPendenteDoDiaTx(_ *gorm.DB, produtoID uuid.UUID, data string) (*model.ItemColeta, error) {
	for _, id := range r.ordem {
		item := r.itens[id]
		if item != nil && item.ProdutoID == produtoID && item.Data == data && item.Status == "pendente" {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubColetaRepo) IncrementarSolicitadaTx(_ *gorm.DB, id uuid.UUID, qtd int) error {
	if item, ok := r.itens[id]; ok {
		item.QtdSolicitada += qtd
	}
	return nil
}

func (r *stubColetaRepo) CreateDivergenciaTx(_ *gorm.DB, d *model.Divergencia) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.divergencias = append(r.divergencias, *d)
	return nil
}

func (r *stubColetaRepo) DeleteDivergenciaPorItemTx(_ *gorm.DB, itemColetaID uuid.UUID) error {
	kept := r.divergencias[:0]
	for _, d := range r.divergencias {
		if d.ItemColetaID != itemColetaID {
			kept = append(kept, d)
		}
	}
	r.divergencias = kept
	return nil
}

func (r *stubColetaRepo) ListDivergencias(_ context.Context) ([]model.Divergencia, error) {
	return r.divergencias, nil
}

func (r *stubColetaRepo) CountDivergenciasPorData(_ context.Context, data string) (int64, error) {
	var n int64
	for _, d := range r.divergencias {
		if d.Data == data {
			n++
		}
	}
	return n, nil
}

func (r *stubColetaRepo) DB() *gorm.DB { return nil }

var _ repository.ColetaRepository = (*stubColetaRepo)(nil)

// ── Despesa ──────────────────────────────────────────────────────────────────

type stubDespesaRepo struct {
	despesas map[uuid.UUID]*model.Despesa
	ordem    []uuid.UUID
}

func newStubDespesaRepo() *stubDespesaRepo {
	return &stubDespesaRepo{despesas: make(map[uuid.UUID]*model.Despesa)}
}

func (r *stubDespesaRepo) Create(_ context.Context, d *model.Despesa) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.despesas[d.ID] = d
	r.ordem = append(r.ordem, d.ID)
	return nil
}

func (r *stubDespesaRepo) CreateTx(_ *gorm.DB, d *model.Despesa) error {
	return r.Create(context.Background(), d)
}

func (r *stubDespesaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.despesas, id)
	return nil
}

func (r *stubDespesaRepo) List(_ context.Context, de, ate string) ([]model.Despesa, error) {
	var out []model.Despesa
	for _, id := range r.ordem {
		d, ok := r.despesas[id]
		if !ok {
			continue
		}
		if de != "" && d.Data < de {
			continue
		}
		if ate != "" && d.Data > ate {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDespesaRepo) ListPorData(_ context.Context, data string) ([]model.Despesa, error) {
	return r.List(context.Background(), data, data)
}

func (r *stubDespesaRepo) DeleteCompraAutomaticaTx(_ *gorm.DB, prefixo, data string) error {
	for id, d := range r.despesas {
		if d.Data == data && strings.HasPrefix(d.Descricao, prefixo) {
			delete(r.despesas, id)
		}
	}
	return nil
}

func (r *stubDespesaRepo) DB() *gorm.DB { return nil }

var _ repository.DespesaRepository = (*stubDespesaRepo)(nil)

func (r *stubDespesaRepo) todas() []model.Despesa {
	out, _ := r.List(context.Background(), "", "")
	return out
}

// ── Pedido ───────────────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
	ordem   []uuid.UUID
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *stubPedidoRepo) CreateTx(_ *gorm.DB, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Itens {
		if p.Itens[i].ID == uuid.Nil {
			p.Itens[i].ID = uuid.New()
		}
		p.Itens[i].PedidoID = p.ID
	}
	r.pedidos[p.ID] = p
	r.ordem = append(r.ordem, p.ID)
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	copia.Itens = append([]model.PedidoItem(nil), p.Itens...)
	return &copia, nil
}

func (r *stubPedidoRepo) List(_ context.Context) ([]model.Pedido, error) {
	out := make([]model.Pedido, 0, len(r.ordem))
	for _, id := range r.ordem {
		if p, ok := r.pedidos[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) ListEntreguesDoDia(_ context.Context, data string) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, id := range r.ordem {
		p, ok := r.pedidos[id]
		if ok && p.Status == "entregue" && (p.Data == data || p.Data == "") {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) ListFiado(_ context.Context) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, id := range r.ordem {
		if p, ok := r.pedidos[id]; ok && p.Pagamento == "fiado" {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) ListFiadoPorCliente(_ context.Context, clienteNome string) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, id := range r.ordem {
		p, ok := r.pedidos[id]
		if ok && p.Pagamento == "fiado" && p.ClienteNome == clienteNome {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) Update(_ context.Context, p *model.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) UpdateCamposTx(_ *gorm.DB, id uuid.UUID, campos map[string]interface{}) error {
	p, ok := r.pedidos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := campos["cliente_nome"]; ok {
		p.ClienteNome = v.(string)
	}
	if v, ok := campos["cliente_fone"]; ok {
		fone := v.(string)
		p.ClienteFone = &fone
	}
	if v, ok := campos["status"]; ok {
		p.Status = v.(string)
	}
	if v, ok := campos["pagamento"]; ok {
		p.Pagamento = v.(string)
	}
	if v, ok := campos["total"]; ok {
		p.Total = v.(decimal.Decimal)
	}
	return nil
}

func (r *stubPedidoRepo) ReplaceItensTx(_ *gorm.DB, pedidoID uuid.UUID, itens []model.PedidoItem) error {
	p, ok := r.pedidos[pedidoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	novos := make([]model.PedidoItem, len(itens))
	for i, item := range itens {
		item.ID = uuid.New()
		item.PedidoID = pedidoID
		novos[i] = item
	}
	p.Itens = novos
	return nil
}

func (r *stubPedidoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.pedidos, id)
	return nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── Perda ────────────────────────────────────────────────────────────────────

type stubPerdaRepo struct {
	perdas []model.Perda
}

func (r *stubPerdaRepo) CreateTx(_ *gorm.DB, p *model.Perda) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.perdas = append(r.perdas, *p)
	return nil
}

func (r *stubPerdaRepo) List(_ context.Context, de, ate string) ([]model.Perda, error) {
	var out []model.Perda
	for _, p := range r.perdas {
		if de != "" && p.Data < de {
			continue
		}
		if ate != "" && p.Data > ate {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPerdaRepo) DB() *gorm.DB { return nil }

var _ repository.PerdaRepository = (*stubPerdaRepo)(nil)

// ── Fechamento ───────────────────────────────────────────────────────────────

type stubFechamentoRepo struct {
	fechamentos []model.FechamentoDia
}

func (r *stubFechamentoRepo) CreateTx(_ *gorm.DB, f *model.FechamentoDia) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.fechamentos = append(r.fechamentos, *f)
	return nil
}

func (r *stubFechamentoRepo) ExistePorData(_ context.Context, data string) (bool, error) {
	for _, f := range r.fechamentos {
		if f.Data == data {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubFechamentoRepo) List(_ context.Context) ([]model.FechamentoDia, error) {
	return r.fechamentos, nil
}

func (r *stubFechamentoRepo) ListPorMes(_ context.Context, mes string) ([]model.FechamentoDia, error) {
	var out []model.FechamentoDia
	for _, f := range r.fechamentos {
		if strings.HasPrefix(f.Data, mes) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *stubFechamentoRepo) DB() *gorm.DB { return nil }

var _ repository.FechamentoRepository = (*stubFechamentoRepo)(nil)

// ── Usuario ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	porUsername map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{porUsername: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.porUsername[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.porUsername[username]
	if !ok || !u.Ativo {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.porUsername {
		if u.ID == id && u.Ativo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.porUsername[u.Username] = u
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Empresa ──────────────────────────────────────────────────────────────────

type stubEmpresaRepo struct {
	empresa *model.Empresa
}

func (r *stubEmpresaRepo) Get(_ context.Context) (*model.Empresa, error) {
	if r.empresa == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.empresa, nil
}

func (r *stubEmpresaRepo) Save(_ context.Context, e *model.Empresa) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.empresa = e
	return nil
}

var _ repository.EmpresaRepository = (*stubEmpresaRepo)(nil)
