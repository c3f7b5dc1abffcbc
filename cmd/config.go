package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	OwnerAddress        string
	EscrowAddress       string
	RefundWindowSeconds string
	SweepSchedule       string
}
