package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hoteldash/hotel-dashboard/config"
	"github.com/hoteldash/hotel-dashboard/internal/models"
	"github.com/hoteldash/hotel-dashboard/internal/notify"
	"github.com/hoteldash/hotel-dashboard/internal/services"
)

var (
	app         *tview.Application
	pages       *tview.Pages
	roomList    *tview.List
	statusBar   *tview.TextView
	conf        config.Config
	roomService services.RoomService
)

// StartDashboard initializes and runs the dashboard UI. It blocks until
// the user quits.
func StartDashboard(cfg config.Config, svc services.RoomService, hub *notify.Hub) error {
	conf = cfg
	roomService = svc

	app = tview.NewApplication()
	pages = tview.NewPages()

	pages.AddPage("dashboard", createDashboardPage(), true, true)

	// The status bar doubles as the toast area: every successful update
	// lands here through the notification hub.
	hub.Register(notify.Func(func(title, description string) {
		statusBar.SetText(fmt.Sprintf("[yellow]%s[-]  %s", title, description))
	}))

	refreshRoomList()

	// Global key handling
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlQ {
			app.Stop()
			return nil
		} else if event.Key() == tcell.KeyEsc {
			// ESC closes whatever modal is on top
			for _, name := range []string{"modal", "addRoomModal", "bookingModal", "roomActionsModal"} {
				if pages.HasPage(name) {
					pages.RemovePage(name)
					return nil
				}
			}
			return nil
		} else if event.Rune() == 'a' {
			if name, _ := pages.GetFrontPage(); name == "dashboard" {
				showAddRoomModal()
				return nil
			}
		}
		return event
	})

	return app.SetRoot(pages, true).EnableMouse(true).Run()
}

// createDashboardPage builds the single page of the dashboard: title,
// room list, status bar and help footer.
func createDashboardPage() tview.Primitive {
	title := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("Hotel Room Dashboard")

	roomList = tview.NewList()
	roomList.SetBorder(true).
		SetTitle(" Rooms ").
		SetTitleAlign(tview.AlignCenter)

	statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	footer := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("a: add room | Enter: room actions | ESC: close dialog | Ctrl+Q: quit")

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(title, 3, 1, false).
		AddItem(roomList, 0, 1, true).
		AddItem(statusBar, 1, 1, false).
		AddItem(footer, 1, 1, false)
}

// refreshRoomList re-renders the room list from the store. Insertion
// order is display order.
func refreshRoomList() {
	roomList.Clear()

	rooms := roomService.ListRooms()
	if len(rooms) == 0 {
		roomList.AddItem("No rooms yet", "Press 'a' to add the first room", 0, nil)
		return
	}

	for _, room := range rooms {
		room := room
		roomList.AddItem(roomLine(room), roomDetailLine(room), 0, func() {
			showRoomActionsModal(room.ID)
		})
	}
}

func roomLine(room models.Room) string {
	status := "[green]Available[-]"
	if !room.IsAvailable {
		status = "[red]Booked[-]"
	}
	return fmt.Sprintf("Room %s  (%s)  %s", room.Number, room.Type, status)
}

func roomDetailLine(room models.Room) string {
	parts := []string{
		fmt.Sprintf("Floor %d", room.Floor),
		fmt.Sprintf("%d beds", room.Beds),
		fmt.Sprintf("%.2f %s/night", room.Price, conf.Currency),
	}
	if booking := room.CurrentBooking(); booking != nil {
		parts = append(parts, fmt.Sprintf("guest: %s until %s",
			booking.GuestName, booking.EndDate.Format(conf.DateFormat)))
	}
	if room.Description != "" {
		parts = append(parts, room.Description)
	}
	return strings.Join(parts, " | ")
}

// showAddRoomModal displays the add-room form.
func showAddRoomModal() {
	typeOptions := make([]string, 0, len(models.RoomTypes()))
	for _, t := range models.RoomTypes() {
		typeOptions = append(typeOptions, string(t))
	}

	form := tview.NewForm()
	form.AddInputField("Room Number", "", 20, nil, nil)
	form.AddDropDown("Room Type", typeOptions, 0, nil)
	form.AddInputField("Floor", "1", 10, nil, nil)
	form.AddInputField("Beds", "1", 10, nil, nil)
	form.AddInputField("Price per Night", "0", 10, nil, nil)
	form.AddTextArea("Description", "", 40, 3, 0, nil)

	form.AddButton("Save", func() {
		number := form.GetFormItem(0).(*tview.InputField).GetText()
		_, roomType := form.GetFormItem(1).(*tview.DropDown).GetCurrentOption()

		// Numeric fields come in as text; a bad entry keeps the form
		// open instead of storing an unrepresentable number.
		floor, err := strconv.Atoi(form.GetFormItem(2).(*tview.InputField).GetText())
		if err != nil {
			showInfoModal("Invalid input", "Floor must be a whole number")
			return
		}
		beds, err := strconv.Atoi(form.GetFormItem(3).(*tview.InputField).GetText())
		if err != nil {
			showInfoModal("Invalid input", "Beds must be a whole number")
			return
		}
		price, err := strconv.ParseFloat(form.GetFormItem(4).(*tview.InputField).GetText(), 64)
		if err != nil {
			showInfoModal("Invalid input", "Price must be a number")
			return
		}
		description := form.GetFormItem(5).(*tview.TextArea).GetText()

		draft := models.RoomDraft{
			Number:      number,
			Type:        models.RoomType(roomType),
			Floor:       floor,
			Beds:        beds,
			IsAvailable: true,
			Price:       price,
			Description: description,
		}

		if _, err := roomService.AddRoom(draft); err != nil {
			showInfoModal("Room not added", err.Error())
			return
		}

		pages.RemovePage("addRoomModal")
		refreshRoomList()
	})
	form.AddButton("Cancel", func() {
		pages.RemovePage("addRoomModal")
	})

	form.SetBorder(true).
		SetTitle(" Add New Room ").
		SetTitleAlign(tview.AlignCenter)

	pages.AddPage("addRoomModal", tview.NewGrid().
		SetColumns(0, 60, 0).
		SetRows(0, 19, 0).
		AddItem(form, 1, 1, 1, 1, 0, 0, true), true, true)
}

// showRoomActionsModal shows the details of a room with the action that
// applies to its current state: book an available room, release a
// booked one.
func showRoomActionsModal(roomID string) {
	room, err := roomService.FindRoom(roomID)
	if err != nil {
		showInfoModal("Error", err.Error())
		return
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Room %s (%s)\n", room.Number, room.Type)
	fmt.Fprintf(&text, "Floor %d, %d beds, %.2f %s/night\n", room.Floor, room.Beds, room.Price, conf.Currency)
	if room.Description != "" {
		fmt.Fprintf(&text, "%s\n", room.Description)
	}

	buttons := []string{"Book", "Close"}
	if booking := room.CurrentBooking(); booking != nil {
		fmt.Fprintf(&text, "\nBooked for %s: %s to %s",
			booking.GuestName,
			booking.StartDate.Format(conf.DateFormat),
			booking.EndDate.Format(conf.DateFormat))
		buttons = []string{"Release", "Close"}
	}

	modal := tview.NewModal().
		SetText(text.String()).
		AddButtons(buttons).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			pages.RemovePage("roomActionsModal")
			switch buttonLabel {
			case "Book":
				showBookingModal(room.ID)
			case "Release":
				if _, err := roomService.Release(room.ID); err != nil {
					showInfoModal("Error", err.Error())
					return
				}
				refreshRoomList()
			}
		})

	modal.SetBorder(true).
		SetTitle(fmt.Sprintf(" Room %s ", room.Number)).
		SetTitleAlign(tview.AlignCenter)

	pages.AddPage("roomActionsModal", modal, false, true)
}

// showBookingModal displays the booking dialog for an available room.
func showBookingModal(roomID string) {
	today := time.Now().Format(conf.DateFormat)

	form := tview.NewForm()
	form.AddInputField("Guest Name", "", 30, nil, nil)
	form.AddInputField(fmt.Sprintf("Start Date (%s)", conf.DateFormat), today, 20, nil, nil)
	form.AddInputField(fmt.Sprintf("End Date (%s)", conf.DateFormat), "", 20, nil, nil)

	form.AddButton("Confirm", func() {
		guestName := form.GetFormItem(0).(*tview.InputField).GetText()

		start, err := time.Parse(conf.DateFormat, form.GetFormItem(1).(*tview.InputField).GetText())
		if err != nil {
			showInfoModal("Invalid input", "Start date must match "+conf.DateFormat)
			return
		}
		end, err := time.Parse(conf.DateFormat, form.GetFormItem(2).(*tview.InputField).GetText())
		if err != nil {
			showInfoModal("Invalid input", "End date must match "+conf.DateFormat)
			return
		}

		if _, err := roomService.Reserve(roomID, guestName, start, end); err != nil {
			showInfoModal("Booking failed", err.Error())
			return
		}

		pages.RemovePage("bookingModal")
		refreshRoomList()
	})
	form.AddButton("Cancel", func() {
		pages.RemovePage("bookingModal")
	})

	form.SetBorder(true).
		SetTitle(" Book Room ").
		SetTitleAlign(tview.AlignCenter)

	pages.AddPage("bookingModal", tview.NewGrid().
		SetColumns(0, 50, 0).
		SetRows(0, 11, 0).
		AddItem(form, 1, 1, 1, 1, 0, 0, true), true, true)
}

// showInfoModal displays an information modal with a message
func showInfoModal(title, message string) {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			pages.RemovePage("modal")
		})

	modal.SetBorder(true).
		SetTitle(" " + title + " ").
		SetTitleAlign(tview.AlignCenter)

	pages.AddPage("modal", modal, false, true)
}
