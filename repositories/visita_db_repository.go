package repositories

// VisitaDbRepository provides access to the VISITA database. All methods take
// an Executor so they run either on the pool or inside a caller transaction.
type VisitaDbRepository struct{}

func NewVisitaDbRepository() *VisitaDbRepository {
	return &VisitaDbRepository{}
}
