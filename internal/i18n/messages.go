package i18n

import "eventsportal/internal/validation"

// Screen copy.
const (
	MsgEventCreated       = "Event created successfully"
	MsgEventUpdated       = "Event updated successfully"
	MsgEventDeleted       = "Event deleted successfully"
	MsgRegistered         = "Account created. Please log in."
	MsgLoggedOut          = "Logged out"
	MsgWelcome            = "Welcome, %s"
	MsgLoggedInAs         = "Logged in as %s <%s>"
	MsgNotLoggedIn        = "Not logged in"
	MsgExported           = "Exported %d events to %s"
	MsgEvents             = "Events"
	MsgNoEvents           = "No events found"
	MsgEventNotFound      = "Event not found"
	MsgNewEvent           = "New Event"
	MsgEditEvent          = "Edit Event"
	MsgSearchEvents       = "Search events"
	MsgError              = "Error"
	MsgLabelName          = "Name"
	MsgLabelDate          = "Date"
	MsgLabelPlace         = "Place"
	MsgLabelDescription   = "Description"
	MsgLabelCreated       = "Created"
	MsgLabelUpdated       = "Updated"
	MsgLabelFrom          = "From"
	MsgLabelTo            = "To"
	MsgLabelSortBy        = "Sort by"
	MsgLabelOrder         = "Order"
	MsgSortName           = "Name"
	MsgSortDate           = "Date"
	MsgSortCreatedAt      = "Creation date"
	MsgOrderAsc           = "Ascending"
	MsgOrderDesc          = "Descending"
	MsgFailedLoadEvents   = "Failed to load events"
	MsgFailedLoadEvent    = "Failed to load event"
	MsgFailedCreateEvent  = "Failed to create event"
	MsgFailedUpdateEvent  = "Failed to update event"
	MsgFailedDeleteEvent  = "Failed to delete event"
	MsgFailedLogin        = "Login failed"
	MsgFailedRegistration = "Registration failed"
	MsgConfirmDelete      = "Delete this event? [y/N] "
	MsgPasswordPrompt     = "Password: "
	MsgSessionExpired     = "Session expired. Please log in again."
)

type entry struct {
	en, es string
	format bool
}

var messages = []entry{
	{en: MsgEventCreated, es: "Evento creado correctamente"},
	{en: MsgEventUpdated, es: "Evento actualizado correctamente"},
	{en: MsgEventDeleted, es: "Evento eliminado correctamente"},
	{en: MsgRegistered, es: "Cuenta creada. Inicia sesión."},
	{en: MsgLoggedOut, es: "Sesión cerrada"},
	{en: MsgWelcome, es: "Bienvenido, %s", format: true},
	{en: MsgLoggedInAs, es: "Sesión iniciada como %s <%s>", format: true},
	{en: MsgNotLoggedIn, es: "No has iniciado sesión"},
	{en: MsgExported, es: "Se exportaron %d eventos a %s", format: true},
	{en: MsgEvents, es: "Eventos"},
	{en: MsgNoEvents, es: "No se encontraron eventos"},
	{en: MsgEventNotFound, es: "Evento no encontrado"},
	{en: MsgNewEvent, es: "Nuevo evento"},
	{en: MsgEditEvent, es: "Editar evento"},
	{en: MsgSearchEvents, es: "Buscar eventos"},
	{en: MsgError, es: "Error"},
	{en: MsgLabelName, es: "Nombre"},
	{en: MsgLabelDate, es: "Fecha"},
	{en: MsgLabelPlace, es: "Lugar"},
	{en: MsgLabelDescription, es: "Descripción"},
	{en: MsgLabelCreated, es: "Creado"},
	{en: MsgLabelUpdated, es: "Actualizado"},
	{en: MsgLabelFrom, es: "Fecha desde"},
	{en: MsgLabelTo, es: "Fecha hasta"},
	{en: MsgLabelSortBy, es: "Ordenar por"},
	{en: MsgLabelOrder, es: "Orden"},
	{en: MsgSortCreatedAt, es: "Fecha de creación"},
	{en: MsgOrderAsc, es: "Ascendente"},
	{en: MsgOrderDesc, es: "Descendente"},
	{en: MsgFailedLoadEvents, es: "No se pudieron cargar los eventos"},
	{en: MsgFailedLoadEvent, es: "No se pudo cargar el evento"},
	{en: MsgFailedCreateEvent, es: "No se pudo crear el evento"},
	{en: MsgFailedUpdateEvent, es: "No se pudo actualizar el evento"},
	{en: MsgFailedDeleteEvent, es: "No se pudo eliminar el evento"},
	{en: MsgFailedLogin, es: "No se pudo iniciar sesión"},
	{en: MsgFailedRegistration, es: "No se pudo completar el registro"},
	{en: MsgConfirmDelete, es: "¿Eliminar este evento? [s/N] "},
	{en: MsgPasswordPrompt, es: "Contraseña: "},
	{en: MsgSessionExpired, es: "La sesión ha caducado. Inicia sesión de nuevo."},

	{en: validation.MsgNameRequired, es: "El nombre es obligatorio"},
	{en: validation.MsgEmailRequired, es: "El email es obligatorio"},
	{en: validation.MsgEmailInvalid, es: "El email no es válido"},
	{en: validation.MsgPasswordRequired, es: "La contraseña es obligatoria"},
	{en: validation.MsgPasswordTooShort, es: "La contraseña debe tener al menos 8 caracteres"},
	{en: validation.MsgPasswordUppercase, es: "La contraseña debe contener al menos una letra mayúscula"},
	{en: validation.MsgPasswordDigit, es: "La contraseña debe contener al menos un número"},
	{en: validation.MsgPasswordSpecial, es: "La contraseña debe contener al menos un carácter especial (@$!%*?&)"},
	{en: validation.MsgDateRequired, es: "La fecha es obligatoria"},
	{en: validation.MsgDateInvalid, es: "La fecha no es válida"},
}
