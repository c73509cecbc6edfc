package economy

// Bottleneck names the single constraint currently limiting colony growth,
// as diagnosed by the economic coordinator. First-match semantics: the
// diagnosis checks constraints in severity order and reports the first hit.
type Bottleneck string

const (
	BottleneckNone         Bottleneck = ""
	BottleneckIncome       Bottleneck = "INCOME"
	BottleneckTransport    Bottleneck = "TRANSPORT"
	BottleneckConsumption  Bottleneck = "CONSUMPTION"
	BottleneckConstruction Bottleneck = "CONSTRUCTION"
	BottleneckPopulation   Bottleneck = "POPULATION"
	BottleneckCapacity     Bottleneck = "CAPACITY"
	BottleneckCompute      Bottleneck = "COMPUTE"
)
