package domain

// SpecialtyCount is one bar of the doctors-per-specialty chart.
type SpecialtyCount struct {
	Specialty string `json:"especialidade" bson:"_id"`
	Total     int    `json:"total" bson:"total"`
}

type DashboardStats struct {
	ActivePatients        int64            `json:"totalPacientes"`
	ActiveDoctors         int64            `json:"totalMedicos"`
	ScheduledAppointments int64            `json:"totalConsultas"`
	DoctorsBySpecialty    []SpecialtyCount `json:"medicosPorEspecialidade"`
}

// ChartSeries splits the specialty counts into parallel label and value slices.
func (s *DashboardStats) ChartSeries() ([]string, []int) {
	labels := make([]string, 0, len(s.DoctorsBySpecialty))
	values := make([]int, 0, len(s.DoctorsBySpecialty))
	for _, item := range s.DoctorsBySpecialty {
		labels = append(labels, item.Specialty)
		values = append(values, item.Total)
	}
	return labels, values
}
