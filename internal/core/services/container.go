package services

import (
	portsrepo "github.com/SscSPs/sky_delivery_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sky_delivery_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service from the repository provider.
// store may be nil, in which case uploads are not available.
func NewServiceContainer(repos portsrepo.RepositoryProvider, store portsrepo.ObjectStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{
		Employee: NewEmployeeService(repos.EmployeeRepo),
		Category: NewCategoryService(repos.CategoryRepo, repos.DishRepo),
		Dish:     NewDishService(repos.DishRepo, repos.CategoryRepo),
	}
	if store != nil {
		container.Upload = NewUploadService(store)
	}
	return container
}
