package diag

// Reporter is the minimal contract phases use to hand diagnostics upward.
// Implementations: BagReporter (collects into a Bag), NopReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter collects diagnostics into a Bag.
type BagReporter struct {
	Bag *Bag
}

// Report implements Reporter.
func (r BagReporter) Report(d Diagnostic) {
	r.Bag.Add(d)
}

// NopReporter drops every diagnostic.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(Diagnostic) {}
