package postgres

// ProjectionRows expone projectionRows a los tests del paquete.
var ProjectionRows = projectionRows
