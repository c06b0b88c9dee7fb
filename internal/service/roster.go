package service

import (
	"github.com/mbarbosa/mesasync/internal/adapter"
	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/internal/store"
	"github.com/mbarbosa/mesasync/models"
)

// Remote collection names. The remote store keeps the legacy Portuguese
// naming, so these double as wire constants and metadata keys.
const (
	CollectionTables             = "mesas"
	CollectionClients            = "clientes"
	CollectionContracts          = "contratos"
	CollectionSettlements        = "acertos"
	CollectionExpenses           = "despesas"
	CollectionRoutes             = "rotas"
	CollectionCycles             = "ciclos"
	CollectionCollaborators      = "colaboradores"
	CollectionCollaboratorRoutes = "colaborador_rotas"
	CollectionGoals              = "metas"
	CollectionCollaboratorGoals  = "metas_colaborador"
	CollectionSignatures         = "assinaturas"
	CollectionVehicles           = "veiculos"
	CollectionEquipment          = "equipamentos"
	CollectionStock              = "estoque"
)

// BuildHandlers assembles the fixed handler roster in dependency order:
// referenced entity types (routes, clients) sync before the types that carry
// references to them, so a first sync can resolve owning routes locally. The
// order is deterministic and is the order syncAll processes entity types in;
// it never changes at runtime. PushAll walks it in reverse.
func BuildHandlers(st *store.Storages, remote adapter.RemoteStore, access *AccessFilter, meta MetadataStore, log *logger.Logger) []EntityHandler {
	clientRef := func(d models.Document) (*int64, *int64) { return d.ClientID(), nil }

	return []EntityHandler{
		newEntityHandler(CollectionRoutes, st.Routes, remote, access, meta, log),
		newEntityHandler(CollectionCollaborators, st.Collaborators, remote, access, meta, log),
		newEntityHandler(CollectionClients, st.Clients, remote, access, meta, log),
		newEntityHandler(CollectionTables, st.Tables, remote, access, meta, log).withRefs(
			func(t models.Table) (*int64, *int64) { return t.ClientID, nil },
			clientRef,
		),
		newEntityHandler(CollectionContracts, st.Contracts, remote, access, meta, log).withRefs(
			func(c models.Contract) (*int64, *int64) { return &c.ClientID, nil },
			clientRef,
		),
		newEntityHandler(CollectionSettlements, st.Settlements, remote, access, meta, log).withRefs(
			func(s models.Settlement) (*int64, *int64) { return &s.ClientID, s.TableID },
			func(d models.Document) (*int64, *int64) { return d.ClientID(), d.Ref(models.DocFieldTableID) },
		),
		newEntityHandler(CollectionExpenses, st.Expenses, remote, access, meta, log),
		newEntityHandler(CollectionCycles, st.Cycles, remote, access, meta, log),
		newEntityHandler(CollectionCollaboratorRoutes, st.CollaboratorRoutes, remote, access, meta, log),
		newEntityHandler(CollectionGoals, st.Goals, remote, access, meta, log),
		newEntityHandler(CollectionCollaboratorGoals, st.CollaboratorGoals, remote, access, meta, log),
		newEntityHandler(CollectionSignatures, st.Signatures, remote, access, meta, log).withRefs(
			func(s models.Signature) (*int64, *int64) { return s.ClientID, nil },
			clientRef,
		),
		newEntityHandler(CollectionVehicles, st.Vehicles, remote, access, meta, log),
		newEntityHandler(CollectionEquipment, st.Equipment, remote, access, meta, log),
		newEntityHandler(CollectionStock, st.StockItems, remote, access, meta, log),
	}
}
