package dto

// PatientStatPoint punto de la serie de pacientes nuevos por mes.
// Date lleva el mes abreviado ("Jan", "Feb", ...), formato que consume el
// gráfico del dashboard.
type PatientStatPoint struct {
	Date     string `json:"date"`
	Patients int    `json:"patients"`
}
