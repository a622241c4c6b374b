package prediction

// Log Messages
const (
	LogMsgPredictionRecorded = "Prediction recorded"
)
