package entities

// CounterpartySummarySource - контрагент и его строки реквизитов всех трёх типов.
// Отсутствующая строка реквизитов остаётся nil.
type CounterpartySummarySource struct {
	Counterparty
	LLC  *DetailsLLC
	IP   *DetailsIP
	Phys *DetailsPhys
}
